// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func propsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// CheckProps validates a props struct against its `validate` tags.
//
// It is a development-time contract check: the host calls it when
// ui.strict_props is on and logs violations. Views never call it while rendering.
func CheckProps(props any) error {
	err := propsValidator().Struct(props)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid props: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.StructNamespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid props: %s", strings.Join(msgs, "; "))
}
