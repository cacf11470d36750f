package routing

import (
	"strconv"
	"strings"
)

// ServiceOverride configures how one logical service is addressed in
// cluster mode. Zero values mean "infer from the service name".
type ServiceOverride struct {
	URL         string `yaml:"url"`
	ContextPath string `yaml:"contextPath"`
}

// defaultPorts holds the well-known port per logical service. Anything
// unrecognized gets the generic default.
var defaultPorts = map[string]int{
	"user-service":      8085,
	"product-service":   8083,
	"order-service":     8081,
	"payment-service":   8082,
	"shipping-service":  8084,
	"favourite-service": 8086,
}

const genericDefaultPort = 8080

// CanonicalService normalizes a service name for lookup: lower-cased,
// American spelling folded to British, "-service" suffix ensured. Both
// "user" and "User-Service" canonicalize to "user-service"; "favorite"
// to "favourite-service".
func CanonicalService(name string) string {
	n := strings.ToLower(name)
	if !strings.HasSuffix(n, "-service") {
		n += "-service"
	}
	if n == "favorite-service" {
		n = "favourite-service"
	}
	return n
}

// Cluster resolves per-service URLs when each logical service is a
// separately addressable endpoint. Overrides are keyed by canonical
// service name, built once at construction.
type Cluster struct {
	baseURL   string
	overrides map[string]ServiceOverride
}

// NewCluster builds a Cluster from a base URL and per-service
// overrides. Override keys are canonicalized, so config may use short
// names ("order") or either favourite spelling.
func NewCluster(baseURL string, overrides map[string]ServiceOverride) *Cluster {
	if baseURL == "" {
		baseURL = "http://localhost"
	}
	norm := make(map[string]ServiceOverride, len(overrides))
	for name, o := range overrides {
		norm[CanonicalService(name)] = o
	}
	return &Cluster{baseURL: baseURL, overrides: norm}
}

func (c *Cluster) override(serviceName string) ServiceOverride {
	return c.overrides[CanonicalService(serviceName)]
}

// ServiceURL builds the full URL for an endpoint on the named service.
// An explicit override URL is used verbatim as the host; otherwise the
// host is baseURL plus the service's well-known port. An explicit
// context path wins over the derived "/<service-name>" default.
func (c *Cluster) ServiceURL(serviceName, endpoint string) string {
	o := c.override(serviceName)

	base := o.URL
	if base == "" {
		base = c.baseURL + ":" + strconv.Itoa(c.defaultPort(serviceName))
	}

	context := o.ContextPath
	if context == "" {
		context = defaultContextPath(serviceName)
	}
	context = strings.TrimSuffix(context, "/")

	return base + context + normalizeEndpoint(endpoint)
}

func (c *Cluster) defaultPort(serviceName string) int {
	if p, ok := defaultPorts[CanonicalService(serviceName)]; ok {
		return p
	}
	return genericDefaultPort
}

// defaultContextPath derives "/<service-name>" with the name lower-cased
// and suffixed with "-service". The spelling is kept as given.
func defaultContextPath(serviceName string) string {
	n := strings.ToLower(serviceName)
	if !strings.HasSuffix(n, "-service") {
		n += "-service"
	}
	return "/" + n
}
