package ptr

// To возвращает указатель на переданное значение
// Удобно для заполнения опциональных полей в литералах структур
func To[T any](v T) *T {
	return &v
}

// Deref разыменовывает указатель, возвращая zero value для nil
func Deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
