package datastore

import "fmt"

/*Key - the type for the keys of entities tracked by the ledger */
type Key = string

/*EmptyKey - the empty key */
const EmptyKey = Key("")

/*ToKey - takes an interface and returns a Key */
func ToKey(key interface{}) Key {
	switch v := key.(type) {
	case string:
		return Key(v)
	case []byte:
		return Key(v)
	default:
		return Key(fmt.Sprintf("%v", v))
	}
}

/*IsEmpty - checks if the key is empty */
func IsEmpty(key Key) bool {
	return key == EmptyKey
}
