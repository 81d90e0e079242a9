package engine

import "sort"

// Accounts maps client ids to accounts, creating a zero-balance
// unlocked account the first time a client is referenced.
type Accounts struct {
	byClient map[uint16]*Account
}

func NewAccounts() *Accounts {
	return &Accounts{byClient: make(map[uint16]*Account)}
}

// ForClient returns the account for id, creating it when unseen.
func (r *Accounts) ForClient(id uint16) *Account {
	acc, ok := r.byClient[id]
	if !ok {
		acc = &Account{Client: id}
		r.byClient[id] = acc
	}
	return acc
}

// Len returns the number of accounts created so far.
func (r *Accounts) Len() int { return len(r.byClient) }

// All returns every account touched during the run, ordered by client
// id so reports come out stable.
func (r *Accounts) All() []*Account {
	out := make([]*Account, 0, len(r.byClient))
	for _, acc := range r.byClient {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Client < out[j].Client })
	return out
}
