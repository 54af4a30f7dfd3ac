package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Chat
	s.mcpServer.AddTool(
		mcp.NewTool("send_message",
			mcp.WithDescription("Send a free-text command to the smart home assistant, e.g. \"turn on the living room light\" or \"set thermostat to 68\""),
			mcp.WithString("username",
				mcp.Required(),
				mcp.Description("Username whose devices the message controls"),
			),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("The chat message to interpret"),
			),
		),
		s.handleSendMessage,
	)

	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List all of a user's devices with their current state"),
			mcp.WithString("username",
				mcp.Required(),
				mcp.Description("Username owning the devices"),
			),
		),
		s.handleListDevices,
	)

	// Get device
	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get one device by ID, including its current state"),
			mcp.WithString("username",
				mcp.Required(),
				mcp.Description("Username owning the device"),
			),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID"),
			),
		),
		s.handleGetDevice,
	)

	// Create device
	s.mcpServer.AddTool(
		mcp.NewTool("create_device",
			mcp.WithDescription("Create a device for a user; state starts as \"off\""),
			mcp.WithString("username",
				mcp.Required(),
				mcp.Description("Username to own the device"),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Display name, e.g. \"Desk Lamp\""),
			),
			mcp.WithString("category",
				mcp.Required(),
				mcp.Description("Device category: light, thermostat, lock, speaker, fan, blinds, camera, or outlet"),
			),
		),
		s.handleCreateDevice,
	)

	// Remove device
	s.mcpServer.AddTool(
		mcp.NewTool("remove_device",
			mcp.WithDescription("Delete one of a user's devices"),
			mcp.WithString("username",
				mcp.Required(),
				mcp.Description("Username owning the device"),
			),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID"),
			),
		),
		s.handleRemoveDevice,
	)
}
