package checkout

// Environment selects which Maya origin requests go to.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

const (
	sandboxBaseURL    = "https://pg-sandbox.paymaya.com"
	productionBaseURL = "https://pg.paymaya.com"
)

// BaseURL returns the fixed origin for the environment. Anything that is not
// production resolves to the sandbox.
func (e Environment) BaseURL() string {
	if e == Production {
		return productionBaseURL
	}
	return sandboxBaseURL
}
