package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigCachePrefix     = ConfigPrefix + delimiter + "cache"
	ConfigCacheTTL        = ConfigCachePrefix + delimiter + "ttl"
	ConfigCacheMaxEntries = ConfigCachePrefix + delimiter + "max_entries"

	ConfigBenchPrefix     = ConfigPrefix + delimiter + "bench"
	ConfigBenchIterations = ConfigBenchPrefix + delimiter + "iterations"
	ConfigBenchWarmup     = ConfigBenchPrefix + delimiter + "warmup"
	ConfigBenchBudget     = ConfigBenchPrefix + delimiter + "budget"
	ConfigBenchSlowest    = ConfigBenchPrefix + delimiter + "slowest"

	ConfigLogPrefix = ConfigPrefix + delimiter + "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"
	ConfigLogFormat = ConfigLogPrefix + delimiter + "format"
)
