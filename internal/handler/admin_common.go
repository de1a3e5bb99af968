package handler

import (
	"fmt"

	"github.com/iliyamo/travel-reservation/internal/listedit"
	"github.com/iliyamo/travel-reservation/internal/model"
	"github.com/iliyamo/travel-reservation/internal/repository"
)

// AdminHandler bundles repositories for back-office CRUD over
// packages, accommodation properties and reservations.  All methods
// assume JWT authentication and the ADMIN role have been enforced by
// middleware.
type AdminHandler struct {
	Packages     *repository.PackageRepo
	Reservations *repository.ReservationRepo
	Properties   map[model.PropertyType]*repository.PropertyRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(pkgs *repository.PackageRepo, res *repository.ReservationRepo, props map[model.PropertyType]*repository.PropertyRepo) *AdminHandler {
	if pkgs == nil || res == nil || props == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Packages: pkgs, Reservations: res, Properties: props}
}

// listOpReq is the wire shape of one ordered-list edit: the image
// editors post each add/remove/reorder action as it happens.
type listOpReq struct {
	Op    string `json:"op"` // append | remove | move_up | move_down | reorder
	Value string `json:"value,omitempty"`
	Index int    `json:"index"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

// applyListOp runs one edit against a list editor.
func applyListOp(l *listedit.List[string], req listOpReq) error {
	switch req.Op {
	case "append":
		return l.Append(req.Value)
	case "remove":
		return l.RemoveAt(req.Index)
	case "move_up":
		return l.MoveUp(req.Index)
	case "move_down":
		return l.MoveDown(req.Index)
	case "reorder":
		return l.Reorder(req.From, req.To)
	}
	return fmt.Errorf("unknown list operation %q", req.Op)
}
