package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB is stored.
const DBContextKey = contextKey("db")
