package token

import (
	"fmt"

	"entrust_service/pkg/config"
	jwttoken "entrust_service/pkg/token"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	flagUID  = "uid"
	flagRole = "role"
)

// ErrFlags invalid flags
var ErrFlags = errors.New("error parsing flags")

// Register token command, mints a development JWT.
func Register(root *cobra.Command, cfg *config.Service) {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed token for a uid",
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := cmd.Flags().GetInt64(flagUID)
			if err != nil || uid <= 0 {
				return ErrFlags
			}
			role, err := cmd.Flags().GetString(flagRole)
			if err != nil {
				return ErrFlags
			}

			issuer := jwttoken.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
			signed, err := issuer.Generate(uid, jwttoken.RoleType(role))
			if err != nil {
				return errors.Wrap(err, "generate token")
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().Int64P(flagUID, "u", 0, "uid the token is issued for")
	cmd.Flags().StringP(flagRole, "r", string(jwttoken.RoleMember), "role claim")

	root.AddCommand(cmd)
}
