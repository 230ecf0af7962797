package common

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

func ObjectToJson(object interface{}, pretty bool) string {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(object, "", "    ")
	} else {
		b, err = json.Marshal(object)
	}
	if err != nil {
		logrus.Errorf("Can not serialize object to json: %v", err)
		return ""
	}
	return string(b)
}
