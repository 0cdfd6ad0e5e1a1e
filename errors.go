// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package pdf2md

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedInputError is returned when the input is not a PDF file.
type UnsupportedInputError struct {
	Path      string
	Extension string
	MIMEType  string
}

func (e *UnsupportedInputError) Error() string {
	parts := []string{fmt.Sprintf("not a PDF file: %s", e.Path)}
	if e.Extension != "" {
		parts = append(parts, fmt.Sprintf("extension=%q", e.Extension))
	}
	if e.MIMEType != "" {
		parts = append(parts, fmt.Sprintf("mime=%q", e.MIMEType))
	}
	return strings.Join(parts, " ")
}

// IsUnsupportedInput reports whether the error is an UnsupportedInputError.
func IsUnsupportedInput(err error) bool {
	var target *UnsupportedInputError
	return errors.As(err, &target)
}
