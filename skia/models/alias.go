package models

import (
	"github.com/textkit/richlayout/skia/base"
)

type Scalar = base.Scalar
