package i18n

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"hmacchallenge/pkg/challenge"
)

const (
	// 错误映射
	MsgInputNaN             = "inputNaN"
	MsgInvalidSecretKey     = "invalidSecretKey"
	MsgSignatureFailure     = "signatureFailure"
	MsgHMACUnsupported      = "hmacUnsupported"
	MsgInputLength          = "inputLength"
	MsgSecretLength         = "secretLength"
	MsgNoSecret             = "noSecret"
	MsgUnexpectedError      = "unexpectedError"
	MsgReadSecretFileFailed = "readSecretFileFailed"

	// CLI
	MsgCliShort                 = "cliShort"
	MsgCliLong                  = "cliLong"
	MsgCliResult                = "cliResult"
	MsgCliPrompt                = "cliPrompt"
	MsgCliSecretPrompt          = "cliSecretPrompt"
	MsgCliNeedChallenge         = "cliNeedChallenge"
	MsgCliVerifyArgs            = "cliVerifyArgs"
	MsgCliVerifyMatch           = "cliVerifyMatch"
	MsgCliVerifyMismatch        = "cliVerifyMismatch"
	MsgCliQRFail                = "cliQRFail"
	MsgCmdGenerateShort         = "cmdGenerateShort"
	MsgCmdVerifyShort           = "cmdVerifyShort"
	MsgCmdInteractiveShort      = "cmdInteractiveShort"
	MsgCmdVersionShort          = "cmdVersionShort"
	MsgCliFlagHelp              = "cliFlagHelp"
	MsgCliFlagSecret            = "cliFlagSecret"
	MsgCliFlagSecretFile        = "cliFlagSecretFile"
	MsgCliFlagSecretLength      = "cliFlagSecretLength"
	MsgCliFlagChallengeLength   = "cliFlagChallengeLength"
	MsgCliFlagChallenge         = "cliFlagChallenge"
	MsgCliFlagQuiet             = "cliFlagQuiet"
	MsgCliFlagQR                = "cliFlagQR"
	MsgCliFlagQRInverse         = "cliFlagQRInverse"
	MsgCliFlagQRUTF8            = "cliFlagQRUTF8"
	MsgCliFlagVerbose           = "cliFlagVerbose"
	MsgCliVersionLine           = "cliVersionLine"
	MsgCliInteractiveGoodbye    = "cliInteractiveGoodbye"
	MsgCliInteractiveSecretNote = "cliInteractiveSecretNote"
)

var translations = map[string]map[string]string{
	MsgInputNaN: {
		"en": "Input is NaN",
		"zh": "输入不是数字",
	},
	MsgInvalidSecretKey: {
		"en": "Invalid Secret Key",
		"zh": "密钥无效",
	},
	MsgSignatureFailure: {
		"en": "Signature generation failure",
		"zh": "签名生成失败",
	},
	MsgHMACUnsupported: {
		"en": "HMAC-SHA1 Unsupported",
		"zh": "不支持 HMAC-SHA1",
	},
	MsgInputLength: {
		"en": "Input length is not %d",
		"zh": "输入长度不是 %d",
	},
	MsgSecretLength: {
		"en": "Secret key length must be %d",
		"zh": "密钥长度必须为 %d",
	},
	MsgNoSecret: {
		"en": "No key specified as argument",
		"zh": "未通过参数指定密钥",
	},
	MsgUnexpectedError: {
		"en": "Unexpected error: %v",
		"zh": "未知错误: %v",
	},
	MsgReadSecretFileFailed: {
		"en": "Failed to read secret file %s: %v",
		"zh": "读取密钥文件 %s 失败: %v",
	},

	MsgCliShort: {
		"en": "HMAC-SHA1 challenge-response code generator",
		"zh": "HMAC-SHA1 挑战应答码生成器",
	},
	MsgCliLong: {
		"en": "challenger derives a 6 digit response code from a shared secret and a numeric challenge.",
		"zh": "challenger 根据共享密钥与数字挑战生成 6 位应答码。",
	},
	MsgCliResult: {
		"en": "Result: %s",
		"zh": "结果: %s",
	},
	MsgCliPrompt: {
		"en": "Challenge: ",
		"zh": "挑战码: ",
	},
	MsgCliSecretPrompt: {
		"en": "Secret: ",
		"zh": "密钥: ",
	},
	MsgCliNeedChallenge: {
		"en": "a challenge is required",
		"zh": "必须提供挑战码",
	},
	MsgCliVerifyArgs: {
		"en": "usage: verify CHALLENGE CODE",
		"zh": "用法: verify 挑战码 应答码",
	},
	MsgCliVerifyMatch: {
		"en": "Code accepted",
		"zh": "应答码正确",
	},
	MsgCliVerifyMismatch: {
		"en": "code mismatch",
		"zh": "应答码不匹配",
	},
	MsgCliQRFail: {
		"en": "Failed to render QR code: %v",
		"zh": "生成二维码失败: %v",
	},
	MsgCmdGenerateShort: {
		"en": "Generate the response code for a challenge",
		"zh": "为挑战码生成应答码",
	},
	MsgCmdVerifyShort: {
		"en": "Check a response code against a challenge",
		"zh": "校验挑战码对应的应答码",
	},
	MsgCmdInteractiveShort: {
		"en": "Read challenges from stdin and answer each one",
		"zh": "从标准输入逐行读取挑战码并应答",
	},
	MsgCmdVersionShort: {
		"en": "Show version information",
		"zh": "显示版本信息",
	},
	MsgCliFlagHelp: {
		"en": "Show help",
		"zh": "显示帮助",
	},
	MsgCliFlagSecret: {
		"en": "Shared secret (prefer --secret-file or the environment)",
		"zh": "共享密钥（建议使用 --secret-file 或环境变量）",
	},
	MsgCliFlagSecretFile: {
		"en": "Path to the secret file",
		"zh": "密钥文件路径",
	},
	MsgCliFlagSecretLength: {
		"en": "Required secret length in bytes (0 disables the check)",
		"zh": "要求的密钥字节长度（0 表示不检查）",
	},
	MsgCliFlagChallengeLength: {
		"en": "Required challenge length (0 disables the check)",
		"zh": "要求的挑战码长度（0 表示不检查）",
	},
	MsgCliFlagChallenge: {
		"en": "Challenge to answer",
		"zh": "要应答的挑战码",
	},
	MsgCliFlagQuiet: {
		"en": "Print only the code",
		"zh": "仅输出应答码",
	},
	MsgCliFlagQR: {
		"en": "Also render the code as a QR code",
		"zh": "同时以二维码形式输出",
	},
	MsgCliFlagQRInverse: {
		"en": "Invert QR colors",
		"zh": "二维码反色",
	},
	MsgCliFlagQRUTF8: {
		"en": "Render the QR code with UTF-8 blocks",
		"zh": "使用 UTF-8 方块字符输出二维码",
	},
	MsgCliFlagVerbose: {
		"en": "Enable debug logging",
		"zh": "启用调试日志",
	},
	MsgCliVersionLine: {
		"en": "Version: %s\nGit commit: %s\nBuild date: %s\nGo version: %s",
		"zh": "版本: %s\nGit 提交: %s\n构建时间: %s\nGo 版本: %s",
	},
	MsgCliInteractiveGoodbye: {
		"en": "bye",
		"zh": "再见",
	},
	MsgCliInteractiveSecretNote: {
		"en": "Enter one challenge per line, \"quit\" to exit.",
		"zh": "每行输入一个挑战码，输入 \"quit\" 退出。",
	},
}

// ErrorMessage maps an error from the challenge package to the text shown to
// the user. Errors of unknown origin are wrapped in a generic message.
func ErrorMessage(err error) string {
	var lengthErr *challenge.LengthError
	switch challenge.KindOf(err) {
	case challenge.KindNone:
		return ""
	case challenge.KindParse:
		return Resolve(MsgInputNaN)
	case challenge.KindKey:
		return Resolve(MsgInvalidSecretKey)
	case challenge.KindSignature:
		return Resolve(MsgSignatureFailure)
	case challenge.KindAlgorithmUnavailable:
		return Resolve(MsgHMACUnsupported)
	case challenge.KindPolicy:
		if errors.As(err, &lengthErr) {
			if errors.Is(err, challenge.ErrSecretLength) {
				return Msgf(MsgSecretLength, lengthErr.Want)
			}
			return Msgf(MsgInputLength, lengthErr.Want)
		}
		return Resolve(MsgNoSecret)
	default:
		return Msgf(MsgUnexpectedError, err)
	}
}

// Msgf returns the formatted translation.
func Msgf(key string, args ...interface{}) string {
	format := Resolve(key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Resolve returns the translation for key, falling back to en or key itself.
func Resolve(key string) string {
	lang := DetectLang()
	if text := translations[key][lang]; text != "" {
		return text
	}
	if text := translations[key]["en"]; text != "" {
		return text
	}
	return key
}

// DetectLang reads locale env vars and normalizes to "en" / "zh".
func DetectLang() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return normalizeLocale(v)
		}
	}
	return "en"
}

func normalizeLocale(locale string) string {
	lower := strings.ToLower(locale)
	if idx := strings.IndexAny(lower, "._@"); idx >= 0 {
		lower = lower[:idx]
	}
	switch {
	case strings.HasPrefix(lower, "zh"):
		return "zh"
	default:
		return "en"
	}
}
