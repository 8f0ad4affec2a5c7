package kvdb

const (
	// MetaBucket holds index metadata: corpus fingerprint, doc count,
	// last build time and the postings snapshot.
	MetaBucket = "meta"
	// RequestsBucket holds progress statuses for index build requests.
	RequestsBucket = "requests"
)

type DB interface {
	Set(bucket string, key string, value string) error
	Get(bucket string, key string) (string, error)
	Delete(bucket string, key string) error
	GetAllKeys(bucket string) ([]string, error)
	Close() error
}
