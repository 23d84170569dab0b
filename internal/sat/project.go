package sat

import "github.com/pkgkit/pkgsolve/internal/model"

// Project maps a satisfying assignment to actions per UID chain. A chain
// with more than one REMOTE candidate selected for install is an internal
// inconsistency, and is reported rather than silently resolved.
func Project(p *Problem) ([]model.Action, error) {
	var actions []model.Action
	var err error

	seen := make(map[int]bool)
	for i := range p.vars.vars {
		head := p.vars.vars[i].chainHead
		if seen[head] {
			continue
		}
		seen[head] = true

		members := p.vars.chainMembers(head)
		var addSet, delSet []int
		for _, idx := range members {
			v := &p.vars.vars[idx]
			switch {
			case v.toInstall && v.candidate.Origin == model.Remote:
				addSet = append(addSet, idx)
			case !v.toInstall && v.candidate.Origin == model.Installed:
				delSet = append(delSet, idx)
			}
		}

		switch {
		case len(addSet) > 1:
			uid := p.vars.vars[head].candidate.UID
			if err == nil {
				err = &model.ErrInternal{UID: uid, Msg: "more than one remote candidate selected for install"}
			}
		case len(addSet) == 1 && len(delSet) >= 1:
			add := p.vars.vars[addSet[0]].candidate
			from := p.vars.vars[delSet[0]].candidate
			actions = append(actions, model.Action{Kind: model.ActionUpgrade, Candidate: add, From: from})
			for _, idx := range delSet[1:] {
				actions = append(actions, model.Action{Kind: model.ActionDelete, Candidate: p.vars.vars[idx].candidate})
			}
		case len(addSet) == 1:
			kind := model.ActionInstall
			if p.job == model.JobFetch {
				kind = model.ActionFetch
			}
			actions = append(actions, model.Action{Kind: kind, Candidate: p.vars.vars[addSet[0]].candidate})
		case len(delSet) >= 1:
			for _, idx := range delSet {
				actions = append(actions, model.Action{Kind: model.ActionDelete, Candidate: p.vars.vars[idx].candidate})
			}
		}
	}

	return actions, err
}
