package redis

const (
	// KeyPrefixURL is the prefix for url record hashes
	KeyPrefixURL = "snip:url:"
	// KeyAllURLs is the key for the set of all record IDs
	KeyAllURLs = "snip:urls:all"
)

// Hash fields of a url record.
const (
	fieldURL         = "url"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldCreatedAt   = "created_at"
)

// URLKey returns the Redis key for a record by ID
func URLKey(id string) string {
	return KeyPrefixURL + id
}

// AllURLsKey returns the key for the set of all record IDs
func AllURLsKey() string {
	return KeyAllURLs
}
