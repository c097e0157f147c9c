package impl

import (
	"github.com/textkit/richlayout/skia/base"
	"github.com/textkit/richlayout/skia/interfaces"
	"github.com/textkit/richlayout/skia/models"
)

type Scalar = base.Scalar
type Point = models.Point
type Rect = models.Rect
type FontStyle = models.FontStyle
type SkFont = interfaces.SkFont
type SkTypeface = interfaces.SkTypeface
