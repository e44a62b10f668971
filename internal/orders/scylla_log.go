package orders

import (
	"context"
	"sort"

	"github.com/gocql/gocql"

	"pizzamia_back_end/internal/models"
)

// ScyllaGlobalLog persiste il registro globale su ScyllaDB, una riga per voce
// d'ordine sotto (order_id, item_seq). L'aggiornamento di stato di uno chef
// tocca UNA sola riga invece di riscrivere l'intero registro serializzato.
//
// Schema atteso (scripts/scylladb_init.cql):
//
//	CREATE TABLE global_order_items (
//	    order_id   uuid,
//	    item_seq   int,
//	    user_email text,
//	    created_at bigint,
//	    item_id    text,
//	    name       text,
//	    price      double,
//	    quantity   int,
//	    status     text,
//	    notes      text,
//	    PRIMARY KEY (order_id, item_seq)
//	);
type ScyllaGlobalLog struct {
	session *gocql.Session
}

func NewScyllaGlobalLog(session *gocql.Session) *ScyllaGlobalLog {
	return &ScyllaGlobalLog{session: session}
}

func (l *ScyllaGlobalLog) Append(ctx context.Context, snap models.OrderSnapshot) error {
	orderUUID, err := gocql.ParseUUID(snap.OrderID)
	if err != nil {
		return err
	}
	for seq, item := range snap.Items {
		err := l.session.Query(`INSERT INTO global_order_items
			(order_id, item_seq, user_email, created_at, item_id, name, price, quantity, status, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			orderUUID, seq, snap.UserEmail, snap.CreatedAt,
			item.ID, item.Name, item.Price, item.Quantity, item.Status, item.Notes).
			WithContext(ctx).Exec()
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *ScyllaGlobalLog) All(ctx context.Context) ([]models.OrderSnapshot, error) {
	iter := l.session.Query(`SELECT order_id, item_seq, user_email, created_at,
		item_id, name, price, quantity, status, notes FROM global_order_items`).
		WithContext(ctx).Iter()

	byOrder := make(map[string]*models.OrderSnapshot)
	type row struct {
		seq  int
		item models.OrderItem
	}
	rowsByOrder := make(map[string][]row)

	var (
		orderUUID gocql.UUID
		seq       int
		userEmail string
		createdAt int64
		itemID    string
		name      string
		price     float64
		quantity  int
		status    string
		notes     string
	)
	for iter.Scan(&orderUUID, &seq, &userEmail, &createdAt, &itemID, &name, &price, &quantity, &status, &notes) {
		id := orderUUID.String()
		if _, ok := byOrder[id]; !ok {
			byOrder[id] = &models.OrderSnapshot{OrderID: id, UserEmail: userEmail, CreatedAt: createdAt}
		}
		rowsByOrder[id] = append(rowsByOrder[id], row{seq: seq, item: models.OrderItem{
			ID:        itemID,
			Name:      name,
			Price:     price,
			Quantity:  quantity,
			Status:    status,
			Notes:     notes,
			UserEmail: userEmail,
		}})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	out := make([]models.OrderSnapshot, 0, len(byOrder))
	for id, snap := range byOrder {
		rows := rowsByOrder[id]
		sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
		for _, r := range rows {
			snap.Items = append(snap.Items, r.item)
		}
		out = append(out, *snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (l *ScyllaGlobalLog) UpdateItemStatus(ctx context.Context, orderID string, seq int, status string) error {
	orderUUID, err := gocql.ParseUUID(orderID)
	if err != nil {
		return ErrOrderItemNotFound
	}
	// IF EXISTS evita di creare righe fantasma per ordini inesistenti.
	applied, err := l.session.Query(`UPDATE global_order_items SET status = ?
		WHERE order_id = ? AND item_seq = ? IF EXISTS`,
		status, orderUUID, seq).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return err
	}
	if !applied {
		return ErrOrderItemNotFound
	}
	return nil
}
