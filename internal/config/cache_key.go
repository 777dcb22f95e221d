package config

const (
	// SessionCookieName is the cookie holding the signed admin session.
	SessionCookieName = "adminToken"

	DefaultJWTSecret     = "change-this-to-a-secure-random-string"
	DefaultAdminEmail    = "admin@synchomes.com"
	DefaultAdminPassword = "Admin@123"
)

type CacheKeyStruct struct {
	prefix string
}

func NewCacheKeyStruct(prefix string) *CacheKeyStruct {
	return &CacheKeyStruct{prefix: prefix}
}

// ProjectListKey returns the cache key for the public project list
func (r *CacheKeyStruct) ProjectListKey() string {
	return r.prefix + ":projects:list"
}

// ClientListKey returns the cache key for the public testimonial list
func (r *CacheKeyStruct) ClientListKey() string {
	return r.prefix + ":clients:list"
}

var CacheKey = NewCacheKeyStruct("synchomes")
