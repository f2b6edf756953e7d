package config

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// AlertContext tags every alert raised while bootstrapping.
const AlertContext = "Config"

const (
	tokenHelpURL = "https://discord.com/developers/docs/quick-start/getting-started"
	ownerHelpURL = "https://support.discord.com/hc/articles/206346498"
)

const (
	msgTokenPrompt = "token.prompt"
	msgTokenAbort  = "token.abort"
	msgOwnerPrompt = "owner.prompt"
	msgOwnerAbort  = "owner.abort"
	msgLoadFailed  = "load.failed"
	msgWriteFailed = "write.failed"
)

type translation struct {
	en string
	ja string
}

// Arguments: prompts take the help URL; aborts take the config location;
// load and write failures take the location and then the error.
var translations = map[string]translation{
	msgTokenPrompt: {
		en: "Please provide a bot token.\nInstructions for obtaining a token can be found here:\n%s\nBot Token: ",
		ja: "Bot のトークンを記述してください。\n詳しい設定方法については、次のページをご覧ください:\n%s\nBot のトークン: ",
	},
	msgTokenAbort: {
		en: "No token provided! Exiting.\n\nConfig Location: %s",
		ja: "token が指定されていません！終了します...\n\nconfig ファイルの場所: %s",
	},
	msgOwnerPrompt: {
		en: "Owner ID was missing, or the provided owner ID is not valid.\nPlease provide the User ID of the bot's owner.\nInstructions for finding your User ID can be found here:\n%s\nOwner User ID: ",
		ja: "管理者のIDが未記入または間違っています。\nBot の管理者のIDを指定してください。\n詳しい設定方法については、次のページをご覧ください:\n%s\n管理者のID: ",
	},
	msgOwnerAbort: {
		en: "Invalid User ID! Exiting.\n\nConfig Location: %s",
		ja: "無効なユーザーIDです。終了します。\n\n設定ファイルの場所: %s",
	},
	msgLoadFailed: {
		en: "Failed to load config: %[2]v\n\nConfig Location: %[1]s",
		ja: "設定ファイルを読み込めませんでした: %[2]v\n\n設定ファイルの場所: %[1]s",
	},
	msgWriteFailed: {
		en: "Failed to write new config options to config: %[2]v\nPlease make sure that the files are not on your desktop or some other restricted area.\n\nConfig Location: %[1]s",
		ja: "新しい設定項目を設定ファイルに書き込めませんでした: %[2]v\nファイルの権限や保存場所を確認してください。\n\n設定ファイルの場所: %[1]s",
	},
}

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, t := range translations {
		_ = b.SetString(language.English, key, t.en)
		_ = b.SetString(language.Japanese, key, t.ja)
	}
	return b
}

// ParseLanguage parses a BCP 47 tag such as "en" or "ja-JP". Empty or
// malformed input selects English.
func ParseLanguage(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// newPrinter returns a printer for the supported language closest to tag.
func newPrinter(tag language.Tag) *message.Printer {
	_, idx, _ := messages.Matcher().Match(tag)
	return message.NewPrinter(messages.Languages()[idx], message.Catalog(messages))
}
