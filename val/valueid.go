package val

import "math"

// ValueID is a code: an index into a dictionary column's sorted dictionary.
type ValueID uint32

// InvalidValueID is the sentinel "no such value" code returned by
// DictionaryColumn bounds lookups. It is the maximum value representable
// by ValueID's base type regardless of the narrower width an attribute
// vector may actually store codes at — narrowing InvalidValueID to uint8
// or uint16 also yields that width's maximum, so the sentinel survives a
// downcast. It is never itself stored in an attribute vector.
const InvalidValueID ValueID = math.MaxUint32
