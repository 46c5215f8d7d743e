package serviceImp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"milkbill/entities"
	"milkbill/pkg/bill/repository"
	svc "milkbill/pkg/bill/service"
)

var (
	validate = validator.New()
	mobileRe = regexp.MustCompile(`^\d{10}$`)
)

type service struct{ repo repository.BillRepository }

func New(r repository.BillRepository) svc.BillService { return &service{repo: r} }

func (s *service) Create(req svc.CreateBillRequest) (*entities.Bill, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	liters := *req.Morning + *req.Evening
	b := &entities.Bill{
		Name:        strings.TrimSpace(req.Name),
		Mobile:      req.Mobile,
		Date:        req.Date,
		Morning:     *req.Morning,
		Evening:     *req.Evening,
		Rate:        *req.Rate,
		TotalLiters: liters,
		TotalAmount: liters * *req.Rate,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(query string) ([]entities.Bill, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.List()
	}
	return s.repo.Search(query)
}

func (s *service) Delete(id uint) error { return s.repo.Delete(id) }

func (s *service) Summarize(query string) (svc.Summary, error) {
	t, err := s.repo.Totals(strings.TrimSpace(query))
	if err != nil {
		return svc.Summary{}, err
	}
	return svc.Summary{Count: t.Count, TotalLiters: t.TotalLiters, TotalAmount: t.TotalAmount}, nil
}

// validateCreate runs the tag checks plus the rules the tags cannot express
// (10-digit mobile, parseable calendar date, non-blank name). All failures are
// collected so the caller sees every bad field at once.
func validateCreate(req svc.CreateBillRequest) error {
	var details []string

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details = append(details, tagMessage(fe))
			}
		} else {
			details = append(details, err.Error())
		}
	}

	if req.Name != "" && strings.TrimSpace(req.Name) == "" {
		details = append(details, "name must not be blank")
	}
	if req.Mobile != "" && !mobileRe.MatchString(req.Mobile) {
		details = append(details, "mobile must be exactly 10 digits")
	}
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			details = append(details, "date must be a valid YYYY-MM-DD date")
		}
	}

	if len(details) > 0 {
		return &svc.ValidationError{Details: details}
	}
	return nil
}

func tagMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
