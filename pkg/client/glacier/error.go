package glacier

import "fmt"

func (e *APIError) Error() string {
	return fmt.Sprintf("glacier error status: %d, error: %s, message: %s", e.StatusCode, e.ErrorText, e.Message)
}
