package response

import (
	"time"

	"github.com/jinzhu/copier"
	"gopkg.in/guregu/null.v4"
)

// read views use pointers for absent values; responses render them as JSON null
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: (*time.Time)(nil),
			DstType: null.Time{},
			Fn: func(src any) (any, error) {
				return null.TimeFromPtr(src.(*time.Time)), nil
			},
		},
		{
			SrcType: (*string)(nil),
			DstType: null.String{},
			Fn: func(src any) (any, error) {
				return null.StringFromPtr(src.(*string)), nil
			},
		},
	},
}

func copyFrom(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
