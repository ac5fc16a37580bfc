package app

//对请求的参数进行验证
import (
	"strings"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	zh_translations "gopkg.in/go-playground/validator.v9/translations/zh"
)

//安装绑定验证
func validate(s interface{}) (bool, string) {
	Validate := validator.New()
	zh_ch := zh.New()
	uni := ut.New(zh_ch)
	trans, _ := uni.GetTranslator("zh")
	zh_translations.RegisterDefaultTranslations(Validate, trans)
	errs := Validate.Struct(s)
	if errs != nil {
		var msg string
		for _, err := range errs.(validator.ValidationErrors) {
			msg += err.Translate(trans) + "\n"
		}
		return false, msg
	}
	return true, ""
}

//登陆参数验证
type loginValidtor struct {
	Username string `form:"username"  validate:"lte=20,required"`
	Password string `form:"password"  validate:"gte=6,lte=16,required,printascii"`
}

func (lv *loginValidtor) isOk() (bool, string) {
	if strings.ContainsAny(lv.Username, " \n\t\r") {
		return false, "Username 不能包含空字符"
	}
	if strings.ContainsAny(lv.Password, " \n\t\r") {
		return false, "Password 不能包含空字符"
	}
	return validate(lv)
}

type registerValidtor struct {
	Username string `form:"username"  validate:"lte=20,required"`
	Password string `form:"password"  validate:"gte=6,lte=16,required,printascii"`
	Email    string `form:"email"  validate:"email,required"`
	FullName string `form:"full_name" validate:"lte=64,required"`
	Phone    string `form:"phone" validate:"lte=16"`
	State    string `form:"state" validate:"lte=32"`
}

func (rv *registerValidtor) isOk() (bool, string) {
	if strings.ContainsAny(rv.Username, " \n\t\r") {
		return false, "Username 不能包含空字符"
	}
	if strings.ContainsAny(rv.Password, " \n\t\r") {
		return false, "Password 不能包含空字符"
	}
	return validate(rv)
}

//提问参数验证
type askValidtor struct {
	Title    string `form:"title" validate:"required,lte=150"`
	Category string `form:"category" validate:"required,lte=50"`
	Question string `form:"question" validate:"required,lte=5000"`
	Tags     string `form:"tags" validate:"lte=255"` //逗号分隔
}

func (av *askValidtor) isOk() (bool, string) {
	if strings.TrimSpace(av.Title) == "" || strings.TrimSpace(av.Question) == "" {
		return false, "标题和正文不能为空白"
	}
	return validate(av)
}

//回答参数验证
type answerValidtor struct {
	QuestionID string `form:"question_id" validate:"required,lte=16"`
	Answer     string `form:"answer" validate:"required,lte=5000"`
}

func (av *answerValidtor) isOk() (bool, string) {
	if strings.TrimSpace(av.Answer) == "" {
		return false, "回答不能为空白"
	}
	return validate(av)
}
