package api

// Bool returns a pointer to v, for filling optional request fields inline.
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v, for filling optional request fields inline.
func String(v string) *string {
	return &v
}

// Uint32 returns a pointer to v, for filling optional request fields inline.
func Uint32(v uint32) *uint32 {
	return &v
}
