// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// UserAgent is sent with every API request.
func (i Info) UserAgent() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	return "onramp/" + v
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/onramp"
}

// DataAttribution credits the upstream market data provider.
func DataAttribution() string {
	return "Market data provided by CoinGecko (https://www.coingecko.com)"
}
