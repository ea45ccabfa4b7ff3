package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenlang/lorenlang/lexer"
	"github.com/lorenlang/lorenlang/object"
	"github.com/lorenlang/lorenlang/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors for %q: %v", input, p.Errors())

	env := object.NewEnvironment()
	return Eval(program, env)
}

func requireInteger(t *testing.T, obj object.Object, expected int64) {
	t.Helper()
	result, ok := obj.(*object.Integer)
	require.True(t, ok, "expected *object.Integer, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, result.Value)
}

func requireBoolean(t *testing.T, obj object.Object, expected bool) {
	t.Helper()
	result, ok := obj.(*object.Boolean)
	require.True(t, ok, "expected *object.Boolean, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, result.Value)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5;", 5},
		{"10;", 10},
		{"-5;", -5},
		{"-10;", -10},
		{"5 + 5 + 5 + 5 - 10;", 10},
		{"2 * 2 * 2 * 2 * 2;", 32},
		{"-50 + 100 + -50;", 0},
		{"5 * 2 + 10;", 20},
		{"5 + 2 * 10;", 25},
		{"20 + 2 * -10;", 0},
		{"50 / 2 * 2 + 10;", 60},
		{"2 * (5 + 10);", 30},
		{"3 * 3 * 3 + 10;", 37},
		{"3 * (3 * 3) + 10;", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10;", 50},
		{"5 + 5 * 2;", 15},
	}

	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"verdadero;", true},
		{"falso;", false},
		{"1 < 2;", true},
		{"1 > 2;", false},
		{"1 < 1;", false},
		{"1 > 1;", false},
		{"1 == 1;", true},
		{"1 != 1;", false},
		{"1 == 2;", false},
		{"1 != 2;", true},
		{"verdadero == verdadero;", true},
		{"falso == falso;", true},
		{"verdadero == falso;", false},
		{"verdadero != falso;", true},
		{"(1 < 2) == verdadero;", true},
		{"(1 < 2) == falso;", false},
		{"1 === 1;", true},
		{"1 !== 1;", false},
		{"verdadero === verdadero;", true},
		{"\"a\" == \"a\";", true},
		{"\"a\" == \"b\";", false},
	}

	for _, tt := range tests {
		requireBoolean(t, testEval(t, tt.input), tt.expected)
	}
}

func TestNegationOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!verdadero;", false},
		{"!falso;", true},
		{"!5;", false},
		{"!!verdadero;", true},
		{"!!falso;", false},
		{"!!5;", true},
		{"!0;", true},
		{"!\"\";", true},
		{"!\"algo\";", false},
	}

	for _, tt := range tests {
		requireBoolean(t, testEval(t, tt.input), tt.expected)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"si (verdadero) { 10 };", int64(10)},
		{"si (falso) { 10 };", nil},
		{"si (1) { 10 };", int64(10)},
		{"si (1 < 2) { 10 };", int64(10)},
		{"si (1 > 2) { 10 };", nil},
		{"si (1 > 2) { 10 } si_no { 20 };", int64(20)},
		{"si (1 < 2) { 10 } si_no { 20 };", int64(10)},
		{"si (0) { 10 } si_no { 20 };", int64(20)},
		{"si (\"\") { 10 } si_no { 20 };", int64(20)},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if expected, ok := tt.expected.(int64); ok {
			requireInteger(t, evaluated, expected)
		} else {
			assert.Same(t, NULL, evaluated)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"regresa 10;", 10},
		{"regresa 10; 9;", 10},
		{"regresa 2 * 5; 9;", 10},
		{"9; regresa 2 * 5; 9;", 10},
		{
			`
si (10 > 1) {
  si (10 > 1) {
    regresa 10;
  }
  regresa 1;
};
`,
			10,
		},
	}

	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.expected)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input           string
		expectedMessage string
	}{
		{"5 + verdadero;", "tipo de dato incompatible: INTEGER + BOOLEAN"},
		{"5 + verdadero; 5;", "tipo de dato incompatible: INTEGER + BOOLEAN"},
		{"-verdadero;", "operador desconocido: -BOOLEAN"},
		{"verdadero + falso;", "operador desconocido: BOOLEAN + BOOLEAN"},
		{"5; verdadero + falso; 5;", "operador desconocido: BOOLEAN + BOOLEAN"},
		{"si (10 > 1) { verdadero + falso; };", "operador desconocido: BOOLEAN + BOOLEAN"},
		{
			`
si (10 > 1) {
  si (10 > 1) {
    regresa verdadero + falso;
  }
  regresa 1;
};
`,
			"operador desconocido: BOOLEAN + BOOLEAN",
		},
		{"foobar;", "identificador no encontrado: foobar"},
		{"\"Hola\" - \"Mundo\";", "operador desconocido: STRING - STRING"},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		errObj, ok := evaluated.(*object.Error)
		require.True(t, ok, "no error object returned for %q, got %T", tt.input, evaluated)
		assert.Equal(t, tt.expectedMessage, errObj.Message)
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"variable a = 5; a;", 5},
		{"variable a = 5 * 5; a;", 25},
		{"variable a = 5; variable b = a; b;", 5},
		{"variable a = 5; variable b = a; variable c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.expected)
	}
}

func TestFunctionObject(t *testing.T) {
	evaluated := testEval(t, "funcion(x) { x + 2; };")
	fn, ok := evaluated.(*object.Function)
	require.True(t, ok)

	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].String())
	assert.Equal(t, "(x + 2)", fn.Body.String())
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"variable identidad = funcion(x) { x; }; identidad(5);", 5},
		{"variable identidad = funcion(x) { regresa x; }; identidad(5);", 5},
		{"variable doble = funcion(x) { x * 2; }; doble(5);", 10},
		{"variable suma = funcion(x, y) { x + y; }; suma(5, 5);", 10},
		{"variable suma = funcion(x, y) { x + y; }; suma(5 + 5, suma(5, 5));", 20},
		{"funcion(x) { x; }(5);", 5},
	}

	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.expected)
	}
}

func TestClosures(t *testing.T) {
	input := `
variable nuevoAdder = funcion(x) {
  funcion(y) { x + y; };
};

variable a2 = nuevoAdder(2);
a2(2);
`
	requireInteger(t, testEval(t, input), 4)
}

func TestClosureDoesNotLeakIntoOuterScope(t *testing.T) {
	input := `
variable x = 10;
variable f = funcion() {
  variable x = 20;
  x;
};
f();
x;
`
	requireInteger(t, testEval(t, input), 10)
}

func TestStringLiteral(t *testing.T) {
	evaluated := testEval(t, `"Hola mundo!";`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hola mundo!", str.Value)
}

func TestStringConcatenation(t *testing.T) {
	evaluated := testEval(t, `"Hola" + " " + "mundo!";`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hola mundo!", str.Value)
}

func TestBuiltinLongitud(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`longitud("");`, int64(0)},
		{`longitud("cuatro");`, int64(6)},
		{`longitud("hola mundo");`, int64(10)},
		{`longitud(1);`, "argumento para longitud no es soportado, se obtuvo INTEGER"},
		{`longitud("uno", "dos");`, "número incorrecto de argumentos para longitud: se obtuvieron 2, se esperaba 1"},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)

		switch expected := tt.expected.(type) {
		case int64:
			requireInteger(t, evaluated, expected)
		case string:
			errObj, ok := evaluated.(*object.Error)
			require.True(t, ok)
			assert.Equal(t, expected, errObj.Message)
		}
	}
}

func TestFunctionArityMismatch(t *testing.T) {
	evaluated := testEval(t, "variable suma = funcion(x, y) { x + y; }; suma(1);")
	errObj, ok := evaluated.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "número incorrecto de argumentos: se esperaban 2, se obtuvieron 1", errObj.Message)
}

func TestDivisionByZero(t *testing.T) {
	evaluated := testEval(t, "10 / 0;")
	errObj, ok := evaluated.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "división por cero", errObj.Message)
}
