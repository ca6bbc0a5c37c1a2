package initchecker

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckInit принимает пары "имя, значение" и паникует, если какие-то зависимости не инициализированы
func CheckInit(pairs ...any) {
	if missing := Missing(pairs...); len(missing) > 0 {
		panic(fmt.Sprintf("не инициализированы зависимости: %s", strings.Join(missing, ", ")))
	}
}

func Missing(pairs ...any) []string {
	if len(pairs)%2 != 0 {
		panic("CheckInit: нечетное количество аргументов")
	}
	var missing []string
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: первый элемент пары должен быть строкой")
		}
		if isNil(pairs[i+1]) {
			missing = append(missing, name)
		}
	}
	return missing
}

// isNil учитывает типизированный nil внутри интерфейса
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
