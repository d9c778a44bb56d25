package utils

import "fmt"

func ToString(v any) string {
	return fmt.Sprintf("%v", v)
}
