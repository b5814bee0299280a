package multijob

// Coercion names a conversion from a raw parameter string to a Go value.
type Coercion string

// Supported coercions and the Go type Read returns for each.
const (
	CoerceString Coercion = "str"   // string
	CoerceInt    Coercion = "int"   // int
	CoerceUint   Coercion = "uint"  // uint
	CoerceFloat  Coercion = "float" // float64
	CoerceBool   Coercion = "bool"  // bool
)

// Coercions lists every supported coercion.
var Coercions = []Coercion{CoerceString, CoerceInt, CoerceUint, CoerceFloat, CoerceBool}

// Valid reports whether c is a supported coercion.
func (c Coercion) Valid() bool {
	for _, known := range Coercions {
		if c == known {
			return true
		}
	}
	return false
}

// Typemap assigns a coercion to parameter names.
type Typemap map[string]Coercion

// Read consumes a parameter and converts it with the given coercion.
// An unsupported coercion is rejected before the parameter is touched.
func (a *Args) Read(name string, c Coercion) (any, error) {
	switch c {
	case CoerceString:
		return a.GetString(name)
	case CoerceInt:
		return a.GetInt(name)
	case CoerceUint:
		return a.GetUint(name)
	case CoerceFloat:
		return a.GetFloat(name)
	case CoerceBool:
		return a.GetBool(name)
	}
	return nil, &UnknownCoercionError{Name: name, Coercion: c}
}

// ReadAll consumes every remaining parameter in sorted key order.
// Each parameter uses its typemap entry, or def when it has none.
// On the first failure ReadAll stops; parameters read so far stay consumed.
func (a *Args) ReadAll(typemap Typemap, def Coercion) (map[string]any, error) {
	values := make(map[string]any, a.Len())

	for _, name := range a.Remaining() {
		c, ok := typemap[name]
		if !ok {
			c = def
		}

		v, err := a.Read(name, c)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}

	return values, nil
}
