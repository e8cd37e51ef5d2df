package billing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

type datasetFile struct {
	Groups  []Group            `yaml:"groups"`
	Members []MemberObligation `yaml:"members"`
}

// Load reads a dataset YAML file. Unknown fields are a ParseError.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes dataset YAML; path only labels errors.
func Parse(path string, data []byte) (*Dataset, error) {
	var file datasetFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}
	return NewDataset(file.Groups, file.Members)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func convertValidationError(prefix string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := prefix + "." + strings.ToLower(fe.Field())
		return apperrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
	}
	return apperrors.NewValidationError(prefix, err.Error(), err)
}
