package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Catalog
	ProductRepository ProductRepository

	// Cache
	CacheStore   CacheStore
	CacheMetrics CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
