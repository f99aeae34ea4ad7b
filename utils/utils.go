package utils

import (
	"fmt"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func ToStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		logger.Log.Error(err)
		return nil, err
	}
	return s, nil
}

func ToAny(s *structpb.Struct) *anypb.Any {
	data, err := anypb.New(s)
	if err != nil {
		logger.Log.Error(err)
		return nil
	}
	return data
}

// FromAny 解出 ToAny 打包的 Struct
func FromAny(a *anypb.Any) (*structpb.Struct, error) {
	s := &structpb.Struct{}
	if err := a.UnmarshalTo(s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", a.GetTypeUrl(), err)
	}
	return s, nil
}

// StringField 缺失或非字符串时返回 ""
func StringField(s *structpb.Struct, key string) string {
	v, ok := s.GetFields()[key]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

func BoolField(s *structpb.Struct, key string) bool {
	v, ok := s.GetFields()[key]
	if !ok {
		return false
	}
	return v.GetBoolValue()
}

// NumberField 缺失时返回 def
func NumberField(s *structpb.Struct, key string, def int64) int64 {
	v, ok := s.GetFields()[key]
	if !ok {
		return def
	}
	return int64(v.GetNumberValue())
}

// ListField 字符串列表
func ListField(s *structpb.Struct, key string) []string {
	v, ok := s.GetFields()[key]
	if !ok {
		return nil
	}
	var res []string
	for _, item := range v.GetListValue().GetValues() {
		res = append(res, item.GetStringValue())
	}
	return res
}
