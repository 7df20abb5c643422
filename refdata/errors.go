// SPDX-License-Identifier: MIT

package refdata

import (
	"fmt"

	"github.com/katalvlaran/estkit"
)

var (
	// ErrUnknownFormat indicates an encoding name other than json or msgpack.
	ErrUnknownFormat = fmt.Errorf("refdata: unknown encoding format: %w", estkit.ErrFormat)

	// ErrVersion indicates a decoded snapshot from an incompatible schema.
	ErrVersion = fmt.Errorf("refdata: unsupported snapshot version: %w", estkit.ErrFormat)
)
