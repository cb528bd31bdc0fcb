package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// message ids of the user facing texts
const (
	MsgShowingLocations       = "showing_locations"
	MsgShowingLocationsOnDate = "showing_locations_on_date"
	MsgNoLocations            = "no_locations"
	MsgNoLocationsOnDate      = "no_locations_on_date"
	MsgLoadLocationsFailed    = "load_locations_failed"
	MsgLoadUsersFailed        = "load_users_failed"
	MsgNoUsers                = "no_users"
)

var defaultMessages = []*i18n.Message{
	{ID: MsgShowingLocations, Other: "Showing {{.Count}} location(s)."},
	{ID: MsgShowingLocationsOnDate, Other: "Showing {{.Count}} location(s) on {{.Date}}."},
	{ID: MsgNoLocations, Other: "No locations found for this email."},
	{ID: MsgNoLocationsOnDate, Other: "No locations found on {{.Date}}."},
	{ID: MsgLoadLocationsFailed, Other: "Failed to load locations for {{.Email}}. Please try again later."},
	{ID: MsgLoadUsersFailed, Other: "Failed to load user list. Please try again later."},
	{ID: MsgNoUsers, Other: "No users found."},
}

var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	if err := b.AddMessages(language.English, defaultMessages...); err != nil {
		log.WithField("prefix", "i18n").Panicf("add default messages with error: %s", err)
	}
	return b
}

// InitI18NBundle builds the bundle from the built-in English messages and
// every yaml message file of dir (e.g. es.yaml). An empty dir only keeps
// the built-in messages.
func InitI18NBundle(dir string) error {
	b := newBundle()

	if dir != "" {
		files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
		if err != nil {
			return err
		}

		for _, f := range files {
			if _, err := b.LoadMessageFile(f); err != nil {
				return err
			}
			log.WithFields(log.Fields{"prefix": "i18n", "file": f}).Info("loaded message file")
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize renders a message, falling back to the built-in English text
// when the localizer cannot
func Localize(loc *i18n.Localizer, messageID string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err == nil {
		return msg
	}

	log.WithFields(log.Fields{"prefix": "i18n", "id": messageID, "error": err}).Warn("localize message")
	for _, m := range defaultMessages {
		if m.ID == messageID {
			return m.Other
		}
	}
	return messageID
}
