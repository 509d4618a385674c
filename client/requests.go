package client

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ctrader-openapi/codec"
	"ctrader-openapi/messages"
)

// request dispatches req and extracts the typed response, converting error
// envelopes into *ServerError.
func request[R messages.Message](s *Session, ctx context.Context, req messages.Message, opts ...SendOption) (R, error) {
	var zero R
	env, err := s.Send(ctx, req, opts...)
	if err != nil {
		return zero, err
	}
	if err := ServerErrorFrom(env); err != nil {
		return zero, err
	}
	inner, err := codec.Extract(env)
	if err != nil {
		return zero, err
	}
	res, ok := inner.(R)
	if !ok {
		return zero, fmt.Errorf("client: unexpected response %s", messages.Name(env.PayloadTypeTag))
	}
	return res, nil
}

// requireAccount gates account-scoped operations on a completed account auth.
func (s *Session) requireAccount() error {
	if s.State() != StateAccountAuthenticated {
		return ErrAccountNotAuthenticated
	}
	return nil
}

// SendApplicationAuthReq proves the application with its OAuth client pair.
// On success the session moves to AppAuthenticated.
func (s *Session) SendApplicationAuthReq(ctx context.Context, clientID, clientSecret string, opts ...SendOption) (*messages.ProtoOAApplicationAuthRes, error) {
	res, err := request[*messages.ProtoOAApplicationAuthRes](s, ctx, &messages.ProtoOAApplicationAuthReq{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}, opts...)
	if err != nil {
		return nil, err
	}
	s.transition(StateConnected, StateAppAuthenticated)
	s.log.Info("application authenticated")
	return res, nil
}

// SendAccountAuthReq binds a trading account to the session. On success the
// session moves to AccountAuthenticated and remembers the account id.
func (s *Session) SendAccountAuthReq(ctx context.Context, ctidTraderAccountID int64, accessToken string, opts ...SendOption) (*messages.ProtoOAAccountAuthRes, error) {
	res, err := request[*messages.ProtoOAAccountAuthRes](s, ctx, &messages.ProtoOAAccountAuthReq{
		CtidTraderAccountID: ctidTraderAccountID,
		AccessToken:         accessToken,
	}, opts...)
	if err != nil {
		return nil, err
	}
	s.accountID.Store(ctidTraderAccountID)
	s.transition(StateAppAuthenticated, StateAccountAuthenticated)
	s.log.Info("account authenticated", zap.Int64("ctidTraderAccountId", ctidTraderAccountID))
	return res, nil
}

// SendVersionReq asks the server for its API version.
func (s *Session) SendVersionReq(ctx context.Context, opts ...SendOption) (*messages.ProtoOAVersionRes, error) {
	return request[*messages.ProtoOAVersionRes](s, ctx, &messages.ProtoOAVersionReq{}, opts...)
}

// SendGetAccountListByAccessTokenReq lists the trading accounts reachable
// with an access token.
func (s *Session) SendGetAccountListByAccessTokenReq(ctx context.Context, accessToken string, opts ...SendOption) (*messages.ProtoOAGetAccountListByAccessTokenRes, error) {
	return request[*messages.ProtoOAGetAccountListByAccessTokenRes](s, ctx, &messages.ProtoOAGetAccountListByAccessTokenReq{
		AccessToken: accessToken,
	}, opts...)
}

// SendAccountLogoutReq unbinds the account. On success the session drops back
// to AppAuthenticated.
func (s *Session) SendAccountLogoutReq(ctx context.Context, ctidTraderAccountID int64, opts ...SendOption) (*messages.ProtoOAAccountLogoutRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	res, err := request[*messages.ProtoOAAccountLogoutRes](s, ctx, &messages.ProtoOAAccountLogoutReq{
		CtidTraderAccountID: ctidTraderAccountID,
	}, opts...)
	if err != nil {
		return nil, err
	}
	s.accountID.Store(0)
	s.transition(StateAccountAuthenticated, StateAppAuthenticated)
	return res, nil
}

// SendAssetListReq lists tradable assets.
func (s *Session) SendAssetListReq(ctx context.Context, ctidTraderAccountID int64, opts ...SendOption) (*messages.ProtoOAAssetListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAAssetListRes](s, ctx, &messages.ProtoOAAssetListReq{
		CtidTraderAccountID: ctidTraderAccountID,
	}, opts...)
}

// SendAssetClassListReq lists asset classes.
func (s *Session) SendAssetClassListReq(ctx context.Context, ctidTraderAccountID int64, opts ...SendOption) (*messages.ProtoOAAssetClassListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAAssetClassListRes](s, ctx, &messages.ProtoOAAssetClassListReq{
		CtidTraderAccountID: ctidTraderAccountID,
	}, opts...)
}

// SendSymbolCategoryListReq lists symbol categories.
func (s *Session) SendSymbolCategoryListReq(ctx context.Context, ctidTraderAccountID int64, opts ...SendOption) (*messages.ProtoOASymbolCategoryListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOASymbolCategoryListRes](s, ctx, &messages.ProtoOASymbolCategoryListReq{
		CtidTraderAccountID: ctidTraderAccountID,
	}, opts...)
}

// SendSymbolsListReq lists the account's symbols in light form.
func (s *Session) SendSymbolsListReq(ctx context.Context, ctidTraderAccountID int64, includeArchived bool, opts ...SendOption) (*messages.ProtoOASymbolsListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOASymbolsListRes](s, ctx, &messages.ProtoOASymbolsListReq{
		CtidTraderAccountID:    ctidTraderAccountID,
		IncludeArchivedSymbols: includeArchived,
	}, opts...)
}

// SendSymbolByIdReq fetches full symbol details by id.
func (s *Session) SendSymbolByIdReq(ctx context.Context, ctidTraderAccountID int64, symbolIDs []int64, opts ...SendOption) (*messages.ProtoOASymbolByIDRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOASymbolByIDRes](s, ctx, &messages.ProtoOASymbolByIDReq{
		CtidTraderAccountID: ctidTraderAccountID,
		SymbolID:            symbolIDs,
	}, opts...)
}

// SendSubscribeSpotsReq subscribes to spot quotes for the given symbols.
func (s *Session) SendSubscribeSpotsReq(ctx context.Context, ctidTraderAccountID int64, symbolIDs []int64, opts ...SendOption) (*messages.ProtoOASubscribeSpotsRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOASubscribeSpotsRes](s, ctx, &messages.ProtoOASubscribeSpotsReq{
		CtidTraderAccountID: ctidTraderAccountID,
		SymbolID:            symbolIDs,
	}, opts...)
}

// SendUnsubscribeSpotsReq drops the spot subscription for the given symbols.
func (s *Session) SendUnsubscribeSpotsReq(ctx context.Context, ctidTraderAccountID int64, symbolIDs []int64, opts ...SendOption) (*messages.ProtoOAUnsubscribeSpotsRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAUnsubscribeSpotsRes](s, ctx, &messages.ProtoOAUnsubscribeSpotsReq{
		CtidTraderAccountID: ctidTraderAccountID,
		SymbolID:            symbolIDs,
	}, opts...)
}

// SendSubscribeLiveTrendbarReq adds live trendbars to an existing spot
// subscription.
func (s *Session) SendSubscribeLiveTrendbarReq(ctx context.Context, ctidTraderAccountID int64, period messages.TrendbarPeriod, symbolID int64, opts ...SendOption) (*messages.ProtoOASubscribeLiveTrendbarRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOASubscribeLiveTrendbarRes](s, ctx, &messages.ProtoOASubscribeLiveTrendbarReq{
		CtidTraderAccountID: ctidTraderAccountID,
		Period:              period,
		SymbolID:            symbolID,
	}, opts...)
}

// SendUnsubscribeLiveTrendbarReq removes live trendbars from a subscription.
func (s *Session) SendUnsubscribeLiveTrendbarReq(ctx context.Context, ctidTraderAccountID int64, period messages.TrendbarPeriod, symbolID int64, opts ...SendOption) (*messages.ProtoOAUnsubscribeLiveTrendbarRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAUnsubscribeLiveTrendbarRes](s, ctx, &messages.ProtoOAUnsubscribeLiveTrendbarReq{
		CtidTraderAccountID: ctidTraderAccountID,
		Period:              period,
		SymbolID:            symbolID,
	}, opts...)
}

// SendGetTrendbarsReq fetches historical trendbars for a window, optionally
// capped by count.
func (s *Session) SendGetTrendbarsReq(ctx context.Context, req *messages.ProtoOAGetTrendbarsReq, opts ...SendOption) (*messages.ProtoOAGetTrendbarsRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAGetTrendbarsRes](s, ctx, req, opts...)
}

// SendGetTickDataReq fetches historical tick data for a window.
func (s *Session) SendGetTickDataReq(ctx context.Context, req *messages.ProtoOAGetTickDataReq, opts ...SendOption) (*messages.ProtoOAGetTickDataRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAGetTickDataRes](s, ctx, req, opts...)
}

// SendNewOrderReq places an order. The outcome arrives as an execution event;
// the correlated response only acknowledges acceptance into the queue.
func (s *Session) SendNewOrderReq(ctx context.Context, req *messages.ProtoOANewOrderReq, opts ...SendOption) (*messages.ProtoMessage, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return s.Send(ctx, req, opts...)
}

// SendCancelOrderReq cancels a pending order.
func (s *Session) SendCancelOrderReq(ctx context.Context, ctidTraderAccountID, orderID int64, opts ...SendOption) (*messages.ProtoMessage, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return s.Send(ctx, &messages.ProtoOACancelOrderReq{
		CtidTraderAccountID: ctidTraderAccountID,
		OrderID:             orderID,
	}, opts...)
}

// SendAmendOrderReq amends a pending order.
func (s *Session) SendAmendOrderReq(ctx context.Context, req *messages.ProtoOAAmendOrderReq, opts ...SendOption) (*messages.ProtoMessage, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return s.Send(ctx, req, opts...)
}

// SendAmendPositionSLTPReq changes a position's protection levels.
func (s *Session) SendAmendPositionSLTPReq(ctx context.Context, req *messages.ProtoOAAmendPositionSLTPReq, opts ...SendOption) (*messages.ProtoMessage, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return s.Send(ctx, req, opts...)
}

// SendClosePositionReq closes part or all of a position.
func (s *Session) SendClosePositionReq(ctx context.Context, ctidTraderAccountID, positionID, volume int64, opts ...SendOption) (*messages.ProtoMessage, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return s.Send(ctx, &messages.ProtoOAClosePositionReq{
		CtidTraderAccountID: ctidTraderAccountID,
		PositionID:          positionID,
		Volume:              volume,
	}, opts...)
}

// SendTraderReq fetches the account summary.
func (s *Session) SendTraderReq(ctx context.Context, ctidTraderAccountID int64, opts ...SendOption) (*messages.ProtoOATraderRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOATraderRes](s, ctx, &messages.ProtoOATraderReq{
		CtidTraderAccountID: ctidTraderAccountID,
	}, opts...)
}

// SendReconcileReq fetches the open positions and pending orders.
func (s *Session) SendReconcileReq(ctx context.Context, ctidTraderAccountID int64, opts ...SendOption) (*messages.ProtoOAReconcileRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAReconcileRes](s, ctx, &messages.ProtoOAReconcileReq{
		CtidTraderAccountID: ctidTraderAccountID,
	}, opts...)
}

// SendOrderDetailsReq fetches one order with its deals.
func (s *Session) SendOrderDetailsReq(ctx context.Context, ctidTraderAccountID, orderID int64, opts ...SendOption) (*messages.ProtoOAOrderDetailsRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAOrderDetailsRes](s, ctx, &messages.ProtoOAOrderDetailsReq{
		CtidTraderAccountID: ctidTraderAccountID,
		OrderID:             orderID,
	}, opts...)
}

// SendOrderListReq fetches the order history for a window.
func (s *Session) SendOrderListReq(ctx context.Context, ctidTraderAccountID, fromTimestamp, toTimestamp int64, opts ...SendOption) (*messages.ProtoOAOrderListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAOrderListRes](s, ctx, &messages.ProtoOAOrderListReq{
		CtidTraderAccountID: ctidTraderAccountID,
		FromTimestamp:       fromTimestamp,
		ToTimestamp:         toTimestamp,
	}, opts...)
}

// SendDealListReq fetches the deal history for a window, optionally capped by
// maxRows.
func (s *Session) SendDealListReq(ctx context.Context, ctidTraderAccountID, fromTimestamp, toTimestamp int64, maxRows int32, opts ...SendOption) (*messages.ProtoOADealListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOADealListRes](s, ctx, &messages.ProtoOADealListReq{
		CtidTraderAccountID: ctidTraderAccountID,
		FromTimestamp:       fromTimestamp,
		ToTimestamp:         toTimestamp,
		MaxRows:             maxRows,
	}, opts...)
}

// SendGetPositionUnrealizedPnLReq fetches the per-position unrealized PnL.
func (s *Session) SendGetPositionUnrealizedPnLReq(ctx context.Context, ctidTraderAccountID int64, opts ...SendOption) (*messages.ProtoOAGetPositionUnrealizedPnLRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return request[*messages.ProtoOAGetPositionUnrealizedPnLRes](s, ctx, &messages.ProtoOAGetPositionUnrealizedPnLReq{
		CtidTraderAccountID: ctidTraderAccountID,
	}, opts...)
}
