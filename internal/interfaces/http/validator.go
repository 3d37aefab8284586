package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida; los handlers validan los tags `validate:` de
// los DTOs de entrada antes de invocar el caso de uso.
var validate = validator.New(validator.WithRequiredStructEnabled())
