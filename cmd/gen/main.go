package main

import (
	"smokebreak/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CredentialModel{},
		model.GroupModel{},
		model.MemberModel{},
		model.BreakInvitationModel{},
		model.BreakSessionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/sqlite/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
