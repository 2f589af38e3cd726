package entity

// Grant is one row of a role's menu access list: what the role may do with a
// menu item and for how long.
type Grant struct {
	ID         int64  `json:"id"`
	MenuName   string `json:"menuName"`
	IsActive   bool   `json:"isActive"`
	RoleName   string `json:"roleName"`
	AccessName string `json:"accessName"`
	TimeLimit  int64  `json:"timeLimit"`
}
