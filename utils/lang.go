package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// SupportedLanguages lists the message files loaded into the bundle
var SupportedLanguages = []string{"en", "id"}

func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, lang := range SupportedLanguages {
		bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), lang+".yaml"))
	}
}

// NewLocalizer accepts language tags or raw Accept-Language values
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Translate localizes a message. The message id is returned when the
// message is missing in every language.
func Translate(loc *i18n.Localizer, messageID string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
