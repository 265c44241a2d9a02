package validatorx

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/contact-store/constant"
	"github.com/muhammadheryan/contact-store/model"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,25}$`)
)

// fieldTags mirrors the validate tags of model.ContactRequest for single-value checks.
var fieldTags = map[string]string{
	constant.FieldName:  "notblank,max=120",
	constant.FieldEmail: "notblank,contactemail",
	constant.FieldPhone: "notblank,contactphone",
}

// messages maps field and failed tag to the message returned to clients.
var messages = map[string]map[string]string{
	constant.FieldName: {
		"notblank": constant.MsgNameRequired,
		"max":      constant.MsgNameTooLong,
	},
	constant.FieldEmail: {
		"notblank":     constant.MsgEmailRequired,
		"contactemail": constant.MsgEmailInvalid,
	},
	constant.FieldPhone: {
		"notblank":     constant.MsgPhoneRequired,
		"contactphone": constant.MsgPhoneInvalid,
	},
}

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	nv := gpvalidator.New()
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = nv.RegisterValidation("notblank", func(fl gpvalidator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = nv.RegisterValidation("contactemail", func(fl gpvalidator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = nv.RegisterValidation("contactphone", func(fl gpvalidator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v = nv
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateContact checks a full contact and returns one message per invalid
// field. An empty map means the contact is valid. Values are not normalized.
func ValidateContact(req *model.ContactRequest) map[string]string {
	errs := map[string]string{}
	if req == nil {
		req = &model.ContactRequest{}
	}
	err := ValidateStruct(req)
	if err == nil {
		return errs
	}
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(field, fe.Tag())
	}
	return errs
}

// ValidateFields applies the contact rules to the supplied fields only.
// Keys outside name, email and phone are ignored.
func ValidateFields(fields map[string]string) map[string]string {
	if v == nil {
		Init()
	}
	errs := map[string]string{}
	for field, value := range fields {
		tags, ok := fieldTags[field]
		if !ok {
			continue
		}
		err := v.Var(value, tags)
		if err == nil {
			continue
		}
		if verrs, ok := err.(gpvalidator.ValidationErrors); ok && len(verrs) > 0 {
			errs[field] = message(field, verrs[0].Tag())
		}
	}
	return errs
}

func message(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return field + " is invalid"
}
