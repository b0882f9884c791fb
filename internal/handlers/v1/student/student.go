package student

import (
	"context"

	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/service"
	"github.com/greenschool/canteen-server/internal/view"
)

// Student is the API response model for a student dashboard.
type Student struct {
	NIS            string                `json:"nis" doc:"Student NIS"`
	Name           string                `json:"name" doc:"Display name"`
	Balance        int64                 `json:"balance" doc:"Balance in whole currency units"`
	BalanceDisplay string                `json:"balanceDisplay" doc:"Balance with thousands-grouping"`
	OrganicWaste   string                `json:"organicWaste" doc:"Collected organic waste, e.g. \"2.50 kg\""`
	AnorganicWaste string                `json:"anorganicWaste" doc:"Collected inorganic waste"`
	Transactions   []view.TransactionRow `json:"transactions" doc:"Transaction history, oldest first"`
}

func toAPIStudent(s *service.Student) Student {
	return Student{
		NIS:            s.NIS,
		Name:           s.Name,
		Balance:        s.Balance,
		BalanceDisplay: view.FormatCurrency(s.Balance),
		OrganicWaste:   view.FormatKilograms(s.TotalWaste.Organic),
		AnorganicWaste: view.FormatKilograms(s.TotalWaste.Anorganic),
		Transactions:   view.TransactionRows(s.Transactions),
	}
}

// studentLooker is the interface for reading one student.
type studentLooker interface {
	LookupStudent(ctx context.Context, nis string) (*service.Student, error)
}

// actionDispatcher is the interface for dispatching mutations to the
// operator queue.
type actionDispatcher interface {
	Process(ctx context.Context, action actions.IAction) error
}
