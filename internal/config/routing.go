package config

import (
	"fmt"
	"strconv"
)

// Strategy identifies which of the five mutually exclusive routing
// strategies a routing block selects.
type Strategy string

const (
	StrategyDefault        Strategy = "default"
	StrategyRegion         Strategy = "region"
	StrategySingleEndpoint Strategy = "single endpoint"
	StrategyBaseDomain     Strategy = "base domain"
	StrategyCustom         Strategy = "custom endpoints"
)

// Endpoint is one resolved service endpoint.
type Endpoint struct {
	Host   string
	Port   int
	Scheme string
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s://%s:%d", e.Scheme, e.Host, e.Port)
}

// ResolvedRouting is the normalized endpoint triple a transport layer
// consumes.
type ResolvedRouting struct {
	Strategy Strategy
	API      Endpoint
	OTLP     Endpoint
	Flight   Endpoint
}

const (
	defaultPort  = 443
	schemeHTTPS  = "https"
	schemeFlight = "grpc+tls"
)

// Built-in canonical host triples per region.
var regionEndpoints = map[string]ResolvedRouting{
	"US": {
		Strategy: StrategyRegion,
		API:      Endpoint{Host: "api.arize.com", Port: defaultPort, Scheme: schemeHTTPS},
		OTLP:     Endpoint{Host: "otlp.arize.com", Port: defaultPort, Scheme: schemeHTTPS},
		Flight:   Endpoint{Host: "flight.arize.com", Port: defaultPort, Scheme: schemeFlight},
	},
	"EU": {
		Strategy: StrategyRegion,
		API:      Endpoint{Host: "api.eu.arize.com", Port: defaultPort, Scheme: schemeHTTPS},
		OTLP:     Endpoint{Host: "otlp.eu.arize.com", Port: defaultPort, Scheme: schemeHTTPS},
		Flight:   Endpoint{Host: "flight.eu.arize.com", Port: defaultPort, Scheme: schemeFlight},
	},
}

// ValidRegions returns the regions of the built-in endpoint table.
func ValidRegions() []string {
	return []string{"US", "EU"}
}

// DetectStrategy inspects which strategy's field set is populated. It fails
// with AmbiguousRoutingError when fields from two or more strategies are
// set, and with IncompleteRoutingError when the selected strategy is
// missing required fields. An empty routing block selects the default
// production endpoints.
func DetectStrategy(r RoutingSection) (Strategy, error) {
	var touched []string
	if r.Region != "" {
		touched = append(touched, string(StrategyRegion))
	}
	if r.SingleHost != "" || r.SinglePort != "" {
		touched = append(touched, string(StrategySingleEndpoint))
	}
	if r.BaseDomain != "" {
		touched = append(touched, string(StrategyBaseDomain))
	}
	if customTouched(r) {
		touched = append(touched, string(StrategyCustom))
	}

	switch len(touched) {
	case 0:
		return StrategyDefault, nil
	case 1:
	default:
		return "", &AmbiguousRoutingError{Variants: touched}
	}

	strategy := Strategy(touched[0])
	switch strategy {
	case StrategySingleEndpoint:
		var missing []string
		if r.SingleHost == "" {
			missing = append(missing, "single_host")
		}
		if r.SinglePort == "" {
			missing = append(missing, "single_port")
		}
		if len(missing) > 0 {
			return "", &IncompleteRoutingError{Variant: string(strategy), Missing: missing}
		}
	case StrategyCustom:
		if missing := customMissing(r); len(missing) > 0 {
			return "", &IncompleteRoutingError{Variant: string(strategy), Missing: missing}
		}
	}
	return strategy, nil
}

// Resolve validates the routing block and produces the normalized endpoint
// triple. Values must already be expanded; a ${VAR} reference left in a
// routing field resolves like any other literal and fails the relevant
// check.
func Resolve(r RoutingSection) (ResolvedRouting, error) {
	strategy, err := DetectStrategy(r)
	if err != nil {
		return ResolvedRouting{}, err
	}

	switch strategy {
	case StrategyDefault:
		resolved := regionEndpoints["US"]
		resolved.Strategy = StrategyDefault
		return resolved, nil

	case StrategyRegion:
		resolved, ok := regionEndpoints[r.Region]
		if !ok {
			return ResolvedRouting{}, &UnknownRegionError{Region: r.Region}
		}
		return resolved, nil

	case StrategySingleEndpoint:
		port, err := parsePort("single_port", r.SinglePort)
		if err != nil {
			return ResolvedRouting{}, err
		}
		return ResolvedRouting{
			Strategy: StrategySingleEndpoint,
			API:      Endpoint{Host: r.SingleHost, Port: port, Scheme: schemeHTTPS},
			OTLP:     Endpoint{Host: r.SingleHost, Port: port, Scheme: schemeHTTPS},
			Flight:   Endpoint{Host: r.SingleHost, Port: port, Scheme: schemeFlight},
		}, nil

	case StrategyBaseDomain:
		return ResolvedRouting{
			Strategy: StrategyBaseDomain,
			API:      Endpoint{Host: "api." + r.BaseDomain, Port: defaultPort, Scheme: schemeHTTPS},
			OTLP:     Endpoint{Host: "otlp." + r.BaseDomain, Port: defaultPort, Scheme: schemeHTTPS},
			Flight:   Endpoint{Host: "flight." + r.BaseDomain, Port: defaultPort, Scheme: schemeFlight},
		}, nil

	case StrategyCustom:
		flightPort, err := parsePort("flight_port", r.FlightPort)
		if err != nil {
			return ResolvedRouting{}, err
		}
		return ResolvedRouting{
			Strategy: StrategyCustom,
			API:      Endpoint{Host: r.APIHost, Port: defaultPort, Scheme: r.APIScheme},
			OTLP:     Endpoint{Host: r.OTLPHost, Port: defaultPort, Scheme: r.OTLPScheme},
			Flight:   Endpoint{Host: r.FlightHost, Port: flightPort, Scheme: r.FlightScheme},
		}, nil
	}

	return ResolvedRouting{}, fmt.Errorf("unhandled routing strategy %q", strategy)
}

// ResolveRouting resolves the Config's routing block. It is a pure
// derivation; callers may re-run it at any time.
func (c Config) ResolveRouting() (ResolvedRouting, error) {
	return Resolve(c.Routing)
}

func customTouched(r RoutingSection) bool {
	for _, f := range customFields(r) {
		if f.value != "" {
			return true
		}
	}
	return false
}

func customMissing(r RoutingSection) []string {
	var missing []string
	for _, f := range customFields(r) {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func customFields(r RoutingSection) []struct{ name, value string } {
	return []struct{ name, value string }{
		{"api_host", r.APIHost},
		{"api_scheme", r.APIScheme},
		{"otlp_host", r.OTLPHost},
		{"otlp_scheme", r.OTLPScheme},
		{"flight_host", r.FlightHost},
		{"flight_port", r.FlightPort},
		{"flight_scheme", r.FlightScheme},
	}
}

func parsePort(field, value string) (int, error) {
	port, err := strconv.Atoi(value)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("routing field %s: %q is not a valid port", field, value)
	}
	return port, nil
}
