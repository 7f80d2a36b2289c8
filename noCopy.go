package poly

// noCopy can be embedded to provide "go vet" linting
// when a Value is copied by assignment instead of Clone or Take
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
