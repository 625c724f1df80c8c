package gitinfo

import (
	"github.com/go-git/go-git/v5"

	"github.com/crucible-ci/crucible/internal/domain"
)

// Inspector implements domain.GitInspector using go-git.
type Inspector struct{}

func New() *Inspector { return &Inspector{} }

// Describe reports the branch and short commit of the repository containing
// projectPath. Returns false when there is no repository or no commit yet;
// the run banner simply omits git information then.
func (g *Inspector) Describe(projectPath string) (domain.GitStatus, bool) {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.GitStatus{}, false
	}

	head, err := repo.Head()
	if err != nil {
		return domain.GitStatus{}, false
	}

	status := domain.GitStatus{Commit: head.Hash().String()[:8]}
	if head.Name().IsBranch() {
		status.Branch = head.Name().Short()
	}
	return status, true
}
