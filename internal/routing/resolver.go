package routing

import (
	"strings"
)

type DeploymentMode int

const (
	ModeLocal DeploymentMode = iota
	ModeCluster
)

func (m DeploymentMode) String() string {
	if m == ModeCluster {
		return "cluster"
	}
	return "local"
}

// DetectMode resolves the deployment mode once at startup. Cluster mode
// is active when the active profile mentions "cluster" or either
// override flag is set; anything else is local.
func DetectMode(activeProfile string, processFlag, envFlag bool) DeploymentMode {
	if strings.Contains(activeProfile, "cluster") || processFlag || envFlag {
		return ModeCluster
	}
	return ModeLocal
}

// prefixRoute maps an endpoint path prefix to the logical service that
// owns it. Order matters: the first matching prefix wins.
type prefixRoute struct {
	prefix  string
	service string
}

var routeTable = []prefixRoute{
	{"/api/users", "user-service"},
	{"/api/credentials", "user-service"},
	{"/api/address", "user-service"},
	{"/api/products", "product-service"},
	{"/api/categories", "product-service"},
	{"/api/orders", "order-service"},
	{"/api/carts", "order-service"},
	{"/api/order-items", "shipping-service"},
	{"/api/shippings", "shipping-service"},
	{"/api/payments", "payment-service"},
	{"/api/favourites", "favourite-service"},
}

// ServiceForEndpoint returns the logical service owning an endpoint
// path. Unknown paths fall back to user-service.
func ServiceForEndpoint(endpoint string) string {
	for _, r := range routeTable {
		if strings.HasPrefix(endpoint, r.prefix) {
			return r.service
		}
	}
	return "user-service"
}

// Resolver turns endpoint paths into fully-qualified URLs. In local
// mode everything targets one base URL; in cluster mode each logical
// service is addressed separately via Cluster.
type Resolver struct {
	mode         DeploymentMode
	localBaseURL string
	cluster      *Cluster
}

func NewResolver(mode DeploymentMode, localBaseURL string, cluster *Cluster) *Resolver {
	if localBaseURL == "" {
		localBaseURL = "http://localhost"
	}
	return &Resolver{mode: mode, localBaseURL: localBaseURL, cluster: cluster}
}

func (r *Resolver) Mode() DeploymentMode { return r.mode }

// URL resolves an endpoint path to a full URL for the service that owns
// it, according to the deployment mode.
func (r *Resolver) URL(endpoint string) string {
	if r.mode == ModeCluster && r.cluster != nil {
		return r.cluster.ServiceURL(ServiceForEndpoint(endpoint), endpoint)
	}
	return r.localBaseURL + normalizeEndpoint(endpoint)
}

func normalizeEndpoint(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		return "/" + endpoint
	}
	return endpoint
}
