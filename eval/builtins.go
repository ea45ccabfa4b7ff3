package eval

import "github.com/lorenlang/lorenlang/object"

// builtins is the fixed set of functions available without a binding.
// The Language's Non-goals exclude a standard library beyond this
// single function.
var builtins = map[string]*object.Builtin{
	"longitud": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("número incorrecto de argumentos para longitud: se obtuvieron %d, se esperaba 1", len(args))
			}

			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			default:
				return newError("argumento para longitud no es soportado, se obtuvo %s", args[0].Type())
			}
		},
	},
}
