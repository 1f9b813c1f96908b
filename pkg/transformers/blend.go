package transformers

// Number constrains Blend to types supporting +, - and *.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Blend combines two values of the same numeric type as (x + y) * x - y.
func Blend[T Number](x, y T) T {
	return (x+y)*x - y
}
