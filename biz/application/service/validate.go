package service

import (
	"errors"
	"fmt"
	"lms-show/biz/infrastructure/consts"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	requiredTag  = "required"
	requiredText = "{0} is required"
	minTag       = "min"
	minText      = "{0} must not be empty"
	uniqueTag    = "unique"
	uniqueText   = "{0} must not contain duplicate usernames"
	notBlankTag  = "notblank"
	notBlankText = "{0} must not be blank"
)

func init() {
	validate = validator.New()
	uni := ut.New(en.New())
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// 错误信息中使用 json 字段名
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// required 只拒绝零值, 纯空白的用户名或标题由 notblank 拦截
	_ = validate.RegisterValidation(notBlankTag, validators.NotBlank)

	registerTranslation(requiredTag, requiredText)
	registerTranslation(minTag, minText)
	registerTranslation(uniqueTag, uniqueText)
	registerTranslation(notBlankTag, notBlankText)
}

func registerTranslation(tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fieldPath(fe))
			return s
		},
	)
}

// fieldPath 去掉结构体名前缀, 如 learners[0].username
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// validateStruct 校验请求, 失败时返回携带逐项描述的参数错误
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return consts.NewValidationErrno(err.Error())
	}
	details := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		details = append(details, fe.Translate(translator))
	}
	return consts.NewValidationErrno(details...)
}

func invalid(format string, v ...any) error {
	return consts.NewValidationErrno(fmt.Sprintf(format, v...))
}
