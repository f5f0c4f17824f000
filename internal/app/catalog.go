package app

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultLocale is the locale notices are shown in unless configured.
	DefaultLocale = "zh-TW"
	// LocaleEnglish is the English catalog.
	LocaleEnglish = "en"
)

var catalogs = map[string]map[string]string{
	DefaultLocale: {
		MsgEmptyInput:          "請輸入客語拼音，使用音調調號，不要用數字調號喔！",
		MsgUnknownInputMode:    "不支援的腔調：%s",
		MsgConversionFailed:    "轉換失敗，請稍後再試！",
		MsgServiceUnreachable:  "無法連線到轉換服務",
		MsgAutoCopied:          "點字內容已自動複製到剪貼簿",
		MsgAutoCopyFailed:      "點字轉換完成，但自動複製失敗。",
		MsgNothingToCopy:       "目前沒有可複製的點字內容！",
		MsgCopied:              "點字內容已複製到剪貼簿！",
		MsgCopyFailed:          "無法複製點字，請手動選取！",
		MsgConverting:          "轉換中…",
		MsgCleared:             "已清空",
		MsgHistoryEmpty:        "尚無轉換紀錄",
		MsgHistoryCleared:      "轉換紀錄已清除",
		MsgHistoryDisabled:     "未啟用轉換紀錄",
		MsgHistoryFailed:       "讀取轉換紀錄失敗",
		MsgConfirmClearHistory: "確定要清除全部轉換紀錄嗎？",
		LabelTitle:             "客語點字轉換",
		LabelInput:             "客語拼音",
		LabelOutput:            "點字",
		LabelInputMode:         "腔調",
		LabelCopyStatus:        "複製狀態",
		LabelHistory:           "轉換紀錄",
		LabelPreferences:       "顯示設定",
		LabelBackground:        "背景顏色",
		LabelForeground:        "文字顏色",
		LabelFontSize:          "字體大小",
		LabelBuildInfo:         "關於",
		LabelNotice:            "提示",
		LabelVersion:           "版本",
		LabelDate:              "日期",
		LabelCommit:            "提交",
		HotkeysMain:            "ctrl+s: 轉換 │ ctrl+y: 複製 │ ctrl+l: 清空 │ tab: 切換欄位 │ ctrl+n/ctrl+b: 腔調 │ f2: 紀錄 │ f3: 設定 │ f1: 關於",
		HotkeysHistory:         "↑/↓: 選擇 │ enter: 載入 │ ctrl+d: 清除全部 │ esc: 返回",
		HotkeysPreferences:     "b: 背景 │ t: 文字 │ +/-: 字體 │ r: 重設 │ esc: 返回",
		HotkeysOverlay:         "enter / esc 關閉",
		HotkeysBack:            "esc: 返回",
		HotkeysQuit:            "ctrl+c: 離開",
	},
	LocaleEnglish: {
		MsgEmptyInput:          "Please enter Hakka romanization with tone marks, not tone numbers!",
		MsgUnknownInputMode:    "Unsupported input mode: %s",
		MsgConversionFailed:    "Conversion failed, please try again later!",
		MsgServiceUnreachable:  "The conversion service is unreachable",
		MsgAutoCopied:          "Braille copied to the clipboard automatically",
		MsgAutoCopyFailed:      "Converted, but the automatic copy failed.",
		MsgNothingToCopy:       "There is no braille to copy yet!",
		MsgCopied:              "Braille copied to the clipboard!",
		MsgCopyFailed:          "Could not copy the braille, please select it manually!",
		MsgConverting:          "Converting…",
		MsgCleared:             "Cleared",
		MsgHistoryEmpty:        "No conversions yet",
		MsgHistoryCleared:      "History cleared",
		MsgHistoryDisabled:     "History is disabled",
		MsgHistoryFailed:       "Could not load the history",
		MsgConfirmClearHistory: "Clear the whole history?",
		LabelTitle:             "Hakka braille converter",
		LabelInput:             "Romanization",
		LabelOutput:            "Braille",
		LabelInputMode:         "Input mode",
		LabelCopyStatus:        "Copy status",
		LabelHistory:           "History",
		LabelPreferences:       "Display",
		LabelBackground:        "Background",
		LabelForeground:        "Text colour",
		LabelFontSize:          "Font size",
		LabelBuildInfo:         "About",
		LabelNotice:            "Notice",
		LabelVersion:           "Version",
		LabelDate:              "Date",
		LabelCommit:            "Commit",
		HotkeysMain:            "ctrl+s: convert │ ctrl+y: copy │ ctrl+l: clear │ tab: focus │ ctrl+n/ctrl+b: mode │ f2: history │ f3: display │ f1: about",
		HotkeysHistory:         "↑/↓: select │ enter: load │ ctrl+d: clear all │ esc: back",
		HotkeysPreferences:     "b: background │ t: text │ +/-: font size │ r: reset │ esc: back",
		HotkeysOverlay:         "enter / esc to close",
		HotkeysBack:            "esc: back",
		HotkeysQuit:            "ctrl+c: quit",
	},
}

var registerOnce sync.Once

// register panics when the built-in catalogs cannot be loaded; they are
// compiled in, so a failure is a programming error.
func register() {
	if err := registerCatalogs(catalogs); err != nil {
		panic(err)
	}
}

func registerCatalogs(set map[string]map[string]string) error {
	for locale, messages := range set {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("catalog %q: %w", locale, err)
		}
		for key, msg := range messages {
			if err = message.SetString(tag, key, msg); err != nil {
				return fmt.Errorf("catalog %q key %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// IsSupportedLocale reports whether a catalog exists for locale.
func IsSupportedLocale(locale string) bool {
	_, ok := catalogs[strings.TrimSpace(locale)]
	return ok
}

// Printer renders message keys in one locale.
type Printer struct {
	locale string
	p      *message.Printer
}

// NewPrinter returns a [Printer] for locale, falling back to [DefaultLocale]
// for unsupported values.
func NewPrinter(locale string) *Printer {
	registerOnce.Do(register)

	locale = strings.TrimSpace(locale)
	if !IsSupportedLocale(locale) {
		locale = DefaultLocale
	}

	return &Printer{locale: locale, p: message.NewPrinter(language.MustParse(locale))}
}

// Locale returns the resolved locale.
func (p *Printer) Locale() string {
	return p.locale
}

// Text renders key with optional format arguments.
func (p *Printer) Text(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
