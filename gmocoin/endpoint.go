package gmocoin

// PublicEndpoint is the base URL of the GMO Coin public API. It is immutable
// process-wide configuration; per-API paths are defined next to the operation
// that uses them.
const PublicEndpoint = "https://api.coin.z.com/public"
