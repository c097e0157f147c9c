package interfaces

import (
	"github.com/textkit/richlayout/skia/base"
	"github.com/textkit/richlayout/skia/models"
)

type Scalar = base.Scalar
type Point = models.Point
type Rect = models.Rect
