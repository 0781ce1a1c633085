package gen

// ParseValidatePeerStatus maps a status name such as "VALID" back to its value.
// Unknown names report false instead of falling back to the zero value.
func ParseValidatePeerStatus(name string) (ValidatePeerStatus, bool) {
	v, ok := ValidatePeerStatus_value[name]
	return ValidatePeerStatus(v), ok
}

// ParseCreatePeerStatus maps a status name such as "CREATED" back to its value.
func ParseCreatePeerStatus(name string) (CreatePeerStatus, bool) {
	v, ok := CreatePeerStatus_value[name]
	return CreatePeerStatus(v), ok
}

// ParseDBType maps a peer type name such as "POSTGRES" back to its value.
func ParseDBType(name string) (DBType, bool) {
	v, ok := DBType_value[name]
	return DBType(v), ok
}
