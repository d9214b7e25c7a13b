package function

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
)

const DefaultSuffix = "dev"

var (
	ErrUnsupportedRuntime = errors.New("unsupported runtime")
	ErrNamesRequired      = errors.New("resource names are required")
)

// NormalizeFunctionName maps a packaged artifact name onto the target
// environment. Applying it twice yields the same name.
func NormalizeFunctionName(original, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	name := strings.ReplaceAll(original, "staging", "dev")
	if suffix != DefaultSuffix && !strings.HasSuffix(name, "-"+suffix) {
		name += "-" + suffix
	}
	if strings.HasPrefix(name, "bebco-bebco") {
		name = "bebco" + strings.TrimPrefix(name, "bebco-bebco")
	}
	return name
}

var runtimes = map[string]func() awslambda.Runtime{
	"python3.9":  awslambda.Runtime_PYTHON_3_9,
	"python3.11": awslambda.Runtime_PYTHON_3_11,
	"python3.12": awslambda.Runtime_PYTHON_3_12,
	"nodejs18.x": awslambda.Runtime_NODEJS_18_X,
	"nodejs20.x": awslambda.Runtime_NODEJS_20_X,
}

func ValidateRuntime(runtime string) error {
	if _, ok := runtimes[runtime]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedRuntime, runtime)
	}
	return nil
}

func RuntimeFor(runtime string) (awslambda.Runtime, error) {
	if err := ValidateRuntime(runtime); err != nil {
		return nil, err
	}
	return runtimes[runtime](), nil
}
