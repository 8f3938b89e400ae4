package repo

import (
	"github.com/coursepay/coursepay/internal/pg"
	affiliaterepo "github.com/coursepay/coursepay/internal/repo/affiliate-repo"
	courserepo "github.com/coursepay/coursepay/internal/repo/course-repo"
	enrollmentrepo "github.com/coursepay/coursepay/internal/repo/enrollment-repo"
	operatorrepo "github.com/coursepay/coursepay/internal/repo/operator-repo"
	payoutrepo "github.com/coursepay/coursepay/internal/repo/payout-repo"
)

// Repositories hold concrete types because most repos back more than one
// service interface.
type Repositories struct {
	OperatorRepo   *operatorrepo.Repository
	AffiliateRepo  *affiliaterepo.Repository
	EnrollmentRepo *enrollmentrepo.Repository
	PayoutRepo     *payoutrepo.Repository
	CourseRepo     *courserepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OperatorRepo:   operatorrepo.New(conn),
		AffiliateRepo:  affiliaterepo.New(conn),
		EnrollmentRepo: enrollmentrepo.New(conn, txManager),
		PayoutRepo:     payoutrepo.New(conn),
		CourseRepo:     courserepo.New(conn),
	}
}
