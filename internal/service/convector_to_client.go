package service

import "github.com/vladislavprovich/nft-explorer/pkg/client/glacier"

type ConvectorToClient struct {
	address string
}

func NewConvectorToClient(address string) *ConvectorToClient {
	return &ConvectorToClient{address: address}
}

func (c *ConvectorToClient) ConvertToListCollectiblesRequest(
	req FetchPageRequest,
) *glacier.ListCollectiblesRequest {
	return &glacier.ListCollectiblesRequest{
		Address:   c.address,
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	}
}
