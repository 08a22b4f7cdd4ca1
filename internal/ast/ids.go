package ast

type (
	UnitID     uint32
	DeclID     uint32
	StmtID     uint32
	ExprID     uint32
	TypeSpecID uint32
	PayloadID  uint32
)

const (
	NoUnitID     UnitID     = 0
	NoDeclID     DeclID     = 0
	NoStmtID     StmtID     = 0
	NoExprID     ExprID     = 0
	NoTypeSpecID TypeSpecID = 0
	NoPayloadID  PayloadID  = 0
)

func (id UnitID) IsValid() bool     { return id != NoUnitID }
func (id DeclID) IsValid() bool     { return id != NoDeclID }
func (id StmtID) IsValid() bool     { return id != NoStmtID }
func (id ExprID) IsValid() bool     { return id != NoExprID }
func (id TypeSpecID) IsValid() bool { return id != NoTypeSpecID }
func (id PayloadID) IsValid() bool  { return id != NoPayloadID }
