package validator

// Property identifies one property of T: the name failures are reported under
// and the accessor that reads the value from an instance.
type Property[T, P any] struct {
	Name string
	Get  func(T) P
}

// Field pairs a property name with its accessor.
//
//	validator.Field("Email", func(u User) string { return u.Email })
func Field[T, P any](name string, get func(T) P) Property[T, P] {
	return Property[T, P]{Name: name, Get: get}
}

func (p Property[T, P]) check(rule string) {
	if p.Name == "" {
		configPanic("", rule, "property name must not be empty")
	}
	if p.Get == nil {
		configPanic(p.Name, rule, "property accessor must not be nil")
	}
}
