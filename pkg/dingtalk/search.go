package dingtalk

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// UserMatch is the result of a successful directory search: the matched
// user's detail record plus the name of the department it was found in.
type UserMatch struct {
	Detail         UserDetail
	DepartmentName string
}

// SearchUserByName scans the whole directory for a user whose name
// matches exactly (case-sensitive). Departments are visited in listing
// order and users in listing order within each department; the first
// match wins.
//
// A failure listing one department's users, or fetching a candidate's
// detail, is logged and skipped so the scan can continue. A failure
// listing the departments themselves aborts the search. When no
// department yields a match the error wraps ErrUserNotFound.
func (c *Client) SearchUserByName(ctx context.Context, name string) (*UserMatch, error) {
	departments, err := c.ListDepartments(ctx, true)
	if err != nil {
		return nil, err
	}

	for _, dept := range departments {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		users, err := c.ListDepartmentUsers(ctx, dept.ID)
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"department_id": dept.ID,
				"department":    dept.Name,
			}).WithError(err).Warn("skipping department: user listing failed")
			continue
		}

		for _, user := range users {
			if user.Name != name {
				continue
			}

			detail, err := c.GetUserDetail(ctx, user.UserID)
			if err != nil {
				c.logger.WithFields(logrus.Fields{
					"userid":     user.UserID,
					"department": dept.Name,
				}).WithError(err).Warn("user detail fetch failed, continuing scan")
				continue
			}
			return &UserMatch{Detail: *detail, DepartmentName: dept.Name}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, name)
}
